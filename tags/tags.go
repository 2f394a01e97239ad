package tags

import "github.com/yohamta/donburi"

var (
	Servant = donburi.NewTag().SetName("Servant")
	Arena   = donburi.NewTag().SetName("Arena")
	Menu    = donburi.NewTag().SetName("Menu")
)

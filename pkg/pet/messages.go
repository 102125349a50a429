package pet

import "fmt"

// feedMessages is the pool a successful Feed picks from.
func feedMessages(name string) []string {
	return []string{
		fmt.Sprintf("Yum! %s munches happily.", name),
		fmt.Sprintf("%s devours the food!", name),
		"That hit the spot!",
	}
}

// playMessages is the pool a successful Play picks from.
func playMessages(name string) []string {
	return []string{
		fmt.Sprintf("%s runs around joyfully!", name),
		fmt.Sprintf("You toss a ball. %s catches it!", name),
		fmt.Sprintf("%s does a little dance!", name),
	}
}

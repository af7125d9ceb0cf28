package main

import "github.com/jsphweid/pitchscore/cmd"

func main() {
	cmd.Execute()
}

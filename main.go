package main

import "github.com/Pjt727/studygroup/cmd"

func main() {
	cmd.Execute()
}

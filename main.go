package main

import "github.com/tarikin/ros-deploy/cmd"

func main() {
	cmd.Execute()
}

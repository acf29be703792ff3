package main

import "event-management-api/cmd/server/cmd"

func main() {
	cmd.Execute()
}

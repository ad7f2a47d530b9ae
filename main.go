package main

import "github.com/Tushar123097/hospital-backend/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/alexxxkny/lineclip/cmd"

func main() {
	cmd.Execute()
}

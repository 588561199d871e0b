package main

import (
	"fmt"
	osx "os"
)

func main() {
	fmt.Println("start")
	osx.Exit(1) // want "direct os.Exit call in main is forbidden"

	defer func() {
		osx.Exit(2) // want "direct os.Exit call in main is forbidden"
	}()
}

func helper() {
	osx.Exit(3)
}

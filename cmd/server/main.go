package main

import "custoplan/internal/app/server"

func main() {
	server.Run()
}

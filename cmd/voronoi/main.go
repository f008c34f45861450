package main

import "github.com/arl/go-voronoi/cmd/voronoi/cmd"

func main() {
	cmd.Execute()
}

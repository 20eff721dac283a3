package main

import (
	"log"

	"github.com/nextbac/bacaddr/bacaddrmain"
)

func main() {
	if err := bacaddrmain.Run(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/a-h/productsearch"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(productsearch.Version)
	return nil
}

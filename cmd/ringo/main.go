// Command ringo evaluates polynomial and number-theoretic operations from the command line.
//
//	ringo mul "12*X + 2" "12*X - 3"
//	ringo --backend rat div "X^2 - 1" "2*X + 2"
//	ringo sqrtmod 29 53
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

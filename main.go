package main

import (
	"fmt"
	"os"

	"github.com/oseayemenre/readinglist/cmd"
)

//	@title						Reading List
//	@version					1.0
//	@description				Books, reading intervals and recommendations.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

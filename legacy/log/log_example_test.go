package log_test

import (
	"fmt"

	llog "github.com/LerianStudio/lib-legacy/legacy/log"
)

func ExampleParseLevel() {
	level, err := llog.ParseLevel("warning")

	fmt.Println(err == nil)
	fmt.Println(level.String())

	// Output:
	// true
	// warn
}

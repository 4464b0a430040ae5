package verify_test

import (
	"context"
	"fmt"

	"github.com/LerianStudio/lib-legacy/legacy/verify"
)

func ExampleRun() {
	report, err := verify.Run(context.Background(), verify.Options{Seed: 42, Samples: 128, MaxSourceLen: 16})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(report.Passed())
	fmt.Println(report.Summary())

	// Output:
	// true
	// 11 checks, 11 passed, 0 failed
}

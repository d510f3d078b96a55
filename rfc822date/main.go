package main

import (
	"flag"
	"fmt"
	"os"

	u "github.com/araddon/gou"
	"github.com/scylladb/termtables"

	"github.com/mailtools/rfc822"
)

var debug = false

func main() {
	flag.BoolVar(&debug, "debug", false, "debug logging of failed parse attempts")
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Println(`Must pass a date:   ./rfc822date "Thu, 18 Dec 2014 21:07:22 +0100"`)
		return
	}
	if debug {
		u.SetupLogging("debug")
		u.SetColorOutput()
	}
	datestr := flag.Args()[0]

	t, err := rfc822.Parse(datestr)
	if err != nil {
		u.Errorf("could not parse %q: %v", datestr, err)
		os.Exit(1)
	}
	_, offset := t.Zone()

	table := termtables.CreateTable()
	table.AddHeaders("Input", "Parsed", "As UTC", "Offset seconds")
	table.AddRow(datestr, fmt.Sprintf("%v", t), fmt.Sprintf("%v", t.UTC()), offset)
	fmt.Println(table.Render())
}

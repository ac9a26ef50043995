package main

import "github.com/ddjproj/reimbursement-tracking/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"os"

	orc "github.com/oudp/orc-go"
	"github.com/spf13/cobra"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "print the CanConvert support matrix for every primitive category pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		orc.PrintMatrix(os.Stdout)
		return nil
	},
}

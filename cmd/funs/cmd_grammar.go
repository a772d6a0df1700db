package main

import (
	"fmt"
	"reflect"

	"github.com/dhamidi/funs/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Print or verify the funs grammar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if check {
				if err := grammar.Verify(); err != nil {
					printErrors(err)
					return err
				}
				fmt.Println("grammar ok")
				return nil
			}
			fmt.Print(grammar.Definition())
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "parse and verify the grammar instead of printing it")

	return cmd
}

func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}

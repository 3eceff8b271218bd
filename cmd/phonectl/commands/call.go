package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func answerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answer",
		Short: "Answer the incoming call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := ensureConnected(ctx, cmd); err != nil {
				return err
			}
			if err := sc.Call.Answer(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Call answered.")
			return nil
		},
	}
}

func endCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "end",
		Aliases: []string{"reject"},
		Short:   "Hang up or reject the current call",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := ensureConnected(ctx, cmd); err != nil {
				return err
			}
			if err := sc.Call.End(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Call ended.")
			return nil
		},
	}
}

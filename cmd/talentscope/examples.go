package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show usage examples",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printExamples(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

// printExamples displays usage examples for the program
func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\n📋 TalentScope Usage Examples 📋")
	fmt.Fprintln(w, "\n1. Predict the salary of a senior ML Engineer in San Francisco:")
	fmt.Fprintln(w, "   talentscope predict --role \"ML Engineer\" --experience senior --location \"San Francisco\"")

	fmt.Fprintln(w, "\n2. Same prediction as JSON, without the computing delay:")
	fmt.Fprintln(w, "   talentscope predict --role \"ML Engineer\" -e senior -l \"San Francisco\" --no-delay --json")

	fmt.Fprintln(w, "\n3. Show the ten most demanded skills, and the details of one:")
	fmt.Fprintln(w, "   talentscope market skills --top 10")
	fmt.Fprintln(w, "   talentscope market skills python")

	fmt.Fprintln(w, "\n4. Rank hiring cities by average salary and silence the banner:")
	fmt.Fprintln(w, "   talentscope market locations --sort salary --silence")

	fmt.Fprintln(w, "\n5. Open the interactive dashboard:")
	fmt.Fprintln(w, "   talentscope dashboard")

	fmt.Fprintln(w, "\n6. Serve the API on port 9090 and ask it for a prediction through a proxy:")
	fmt.Fprintln(w, "   talentscope serve --port 9090")
	fmt.Fprintln(w, "   talentscope predict --server http://localhost:9090 --proxy http://localhost:8080")

	fmt.Fprintln(w, "\nFor more information, visit: https://github.com/fr4nk3nst1ner/talentscope")
}

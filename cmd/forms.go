package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dsh2dsh/edgar-links/internal/forms"
)

var formsCmd = cobra.Command{
	Use:   "forms",
	Short: "Print known form categories, base labels and codes",
	Long: `Prints the table used for classification of forms. Both a category name
and a form code can be used with "find --forms". A form code selects all forms
with the same base label, so 10-K selects 10-K/A too.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		classifier, err := newClassifier()
		cobra.CheckErr(err)
		cobra.CheckErr(printForms(cmd.OutOrStdout(), classifier))
	},
}

func init() {
	rootCmd.AddCommand(&formsCmd)
}

func printForms(w io.Writer, classifier *forms.Classifier) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tBASE\tFORMS")
	for _, category := range classifier.Categories() {
		for _, group := range category.Groups {
			base := group.Base
			if base == classifier.Current() {
				base += " (current)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", category.Name, base,
				strings.Join(group.Forms, ", "))
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("print forms: %w", err)
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

var greetCmd = &cobra.Command{
	Use:   "greet NAME",
	Short: "Print a greeting",
	Args:  cobra.ExactArgs(1),
	RunE:  runGreet,
}

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Register a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered name",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print names as JSON")
	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
}

func runGreet(cmd *cobra.Command, args []string) error {
	if greetingService == nil {
		return errServicesNotConfigured
	}
	if err := domain.ValidateName(args[0], true); err != nil {
		return err
	}
	cmd.Println(greetingService.Greet(args[0]))
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	if nameService == nil {
		return errServicesNotConfigured
	}
	name := args[0]
	if err := domain.ValidateName(name, true); err != nil {
		return err
	}

	stored, err := nameService.Add(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("failed to add name: %w", err)
	}

	cmd.Printf("%s added\n", name)
	cmd.Println(mutedStyle.Render(fmt.Sprintf("id %d", stored.ID())))
	return nil
}

// storedNameJSON is the --json shape of a record.
type storedNameJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func runList(cmd *cobra.Command, _ []string) error {
	if nameService == nil {
		return errServicesNotConfigured
	}

	names, err := nameService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list names: %w", err)
	}

	if listJSON {
		out := make([]storedNameJSON, len(names))
		for i := range names {
			out[i] = storedNameJSON{ID: names[i].ID(), Name: names[i].Name()}
		}
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("encoding names: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(headerStyle.Render(fmt.Sprintf("Stored names (%d)", len(names))))
	cmd.Println(domain.FormatStoredNames(names))
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set an environment variable",
	Long: `Set an environment variable, updating it in place if it already exists.

With --prompt only the key is given and the value is read from stdin,
without echo when stdin is a terminal.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if setPrompt {
			return cobra.ExactArgs(1)(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: runSet,
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get an environment variable",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all environment variables",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete an environment variable",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

// setPrompt is a flag for the set command.
var setPrompt bool

func init() {
	setCmd.Flags().BoolVar(&setPrompt, "prompt", false, "Read the value from stdin instead of the command line")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	if err := requireVariableService(); err != nil {
		return err
	}

	key := args[0]
	var value string
	if setPrompt {
		v, err := readValue(cmd, key)
		if err != nil {
			return fmt.Errorf("failed to read value: %w", err)
		}
		value = v
	} else {
		value = args[1]
	}

	if err := variableService.Set(targetFile(cmd), key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if setPrompt {
		cmd.Printf("Updated %s=%s\n", key, maskValue(value))
	} else {
		cmd.Printf("Updated %s=%s\n", key, value)
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	if err := requireVariableService(); err != nil {
		return err
	}

	key := args[0]
	value, ok, err := variableService.Get(targetFile(cmd), key)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", key, err)
	}

	if !ok {
		cmd.Printf("Variable %s not found\n", key)
		return nil
	}
	cmd.Printf("%s=%s\n", key, value)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := requireVariableService(); err != nil {
		return err
	}

	entries, err := variableService.List(targetFile(cmd))
	if err != nil {
		return fmt.Errorf("failed to list variables: %w", err)
	}

	printEntries(cmd, entries)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := requireVariableService(); err != nil {
		return err
	}

	key := args[0]
	deleted, err := variableService.Delete(targetFile(cmd), key)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	if !deleted {
		cmd.Printf("Variable %s not found\n", key)
		return nil
	}
	cmd.Printf("Deleted %s\n", key)
	return nil
}

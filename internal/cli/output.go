package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Interactive reports whether the command may prompt the user
func (f *OutputFormatter) Interactive() bool {
	return !f.JSON && !f.Quiet
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract the task number if possible
		if numbered, ok := data.(interface{ GetNumber() int }); ok {
			fmt.Printf("%d\n", numbered.GetNumber())
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// JSONResult writes a successful JSON envelope with the given fields
func (f *OutputFormatter) JSONResult(fields map[string]interface{}) error {
	out := map[string]interface{}{"success": true}
	for k, v := range fields {
		out[k] = v
	}
	return json.NewEncoder(os.Stdout).Encode(out)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" && !f.Quiet {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	if s, ok := data.(fmt.Stringer); ok {
		fmt.Println(s.String())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}

// GetNumber returns the 1-based task number
func (t TaskJSON) GetNumber() int {
	return t.Number
}

func (t TaskJSON) String() string {
	return fmt.Sprintf("#%d [%s] %s (%s)", t.Number, t.Priority, t.Description, t.Status)
}

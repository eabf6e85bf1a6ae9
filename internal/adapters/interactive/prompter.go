package interactive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/sorokit/internal/config"
	"github.com/trebuchet-org/sorokit/internal/domain"
	"github.com/trebuchet-org/sorokit/internal/usecase"
)

// ErrNonInteractive is returned when input is needed but prompts are disabled
var ErrNonInteractive = errors.New("interactive prompts disabled")

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "▸ {{ . | cyan }}",
	Inactive: "  {{ . | faint }}",
	Selected: "✓ {{ . | green }}",
	Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
}

// PrompterAdapter asks for functions and argument values on the terminal
type PrompterAdapter struct {
	config *config.RuntimeConfig
}

// NewPrompterAdapter creates a new prompter adapter
func NewPrompterAdapter(cfg *config.RuntimeConfig) *PrompterAdapter {
	return &PrompterAdapter{config: cfg}
}

// SelectFunction lets the user pick one of the contract's functions
func (p *PrompterAdapter) SelectFunction(ctx context.Context, functions []domain.ContractFunction) (*domain.ContractFunction, error) {
	if len(functions) == 0 {
		return nil, fmt.Errorf("no functions to select from")
	}
	if len(functions) == 1 {
		return &functions[0], nil
	}
	if p.config.NonInteractive {
		return nil, fmt.Errorf("%w: a function name is required", ErrNonInteractive)
	}

	options := formatFunctionOptions(functions)
	index, err := p.selectOne("Select function", options, true)
	if err != nil {
		return nil, err
	}
	return &functions[index], nil
}

// PromptArgument asks for the value of one input. Enum inputs are chosen from
// their variants; composite values are typed as JSON.
func (p *PrompterAdapter) PromptArgument(ctx context.Context, fn *domain.ContractFunction, param domain.FunctionParameter) (any, error) {
	if p.config.NonInteractive {
		return nil, fmt.Errorf("%w: missing argument %q for %s", ErrNonInteractive, param.Name, fn.Name)
	}

	if param.Type == "Bool" {
		index, err := p.selectOne(argumentLabel(param), []string{"true", "false"}, false)
		if err != nil {
			return nil, err
		}
		return index == 0, nil
	}

	if meta := param.EnumMetadata; meta != nil && len(meta.Variants) > 0 {
		return p.promptVariant(param, meta)
	}

	return p.promptText(argumentLabel(param), param.Type)
}

func (p *PrompterAdapter) promptVariant(param domain.FunctionParameter, meta *domain.EnumMetadata) (any, error) {
	index, err := p.selectOne(argumentLabel(param), meta.VariantNames(), true)
	if err != nil {
		return nil, err
	}
	variant := meta.Variants[index]
	if variant.Kind != domain.VariantTuple {
		return variant.Name, nil
	}

	values := make([]any, len(variant.PayloadTypes))
	for i := range variant.PayloadTypes {
		payload := variant.PayloadParameter(i)
		v, err := p.promptText(argumentLabel(payload), payload.Type)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return map[string]any{"tag": variant.Name, "values": values}, nil
}

func (p *PrompterAdapter) promptText(label, typ string) (any, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := parseAnswer(input, typ)
			return err
		},
	}
	input, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt cancelled: %w", err)
	}
	return parseAnswer(input, typ)
}

func (p *PrompterAdapter) selectOne(label string, options []string, search bool) (int, error) {
	promptSelect := promptui.Select{
		Label:     label,
		Items:     options,
		Templates: selectTemplates,
		Size:      10,
	}
	if search {
		promptSelect.StartInSearchMode = true
		promptSelect.Searcher = createFuzzySearchFunc(options)
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", err)
	}
	return index, nil
}

// parseAnswer turns typed input into a form value. Input starting with [ or {
// is read as JSON; String inputs are taken verbatim.
func parseAnswer(input, typ string) (any, error) {
	if typ == "String" {
		return input, nil
	}
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("a value is required")
	}
	if trimmed[0] != '[' && trimmed[0] != '{' {
		return trimmed, nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid JSON: trailing data")
	}
	return v, nil
}

func argumentLabel(param domain.FunctionParameter) string {
	return fmt.Sprintf("%s (%s)", param.Name, color.New(color.FgBlue).Sprint(param.Type))
}

// formatFunctionOptions creates display strings for function selection
func formatFunctionOptions(functions []domain.ContractFunction) []string {
	options := make([]string, len(functions))
	for i, fn := range functions {
		name := color.New(color.FgWhite, color.Bold).Sprint(fn.Name)
		sig := strings.TrimPrefix(fn.Signature(), fn.Name)
		options[i] = name + color.New(color.FgBlue).Sprint(sig)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.ArgumentPrompter = (*PrompterAdapter)(nil)

package soroban

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/trebuchet-org/sorokit/internal/domain"
)

const (
	VoidMarker          = "(void)"
	MissingSchemaMarker = "[Error: Output schema unavailable]"
)

// ResultFormatter renders contract return values for display. It never
// fails: problems are reported inside the returned string.
type ResultFormatter struct {
	log *slog.Logger
}

// NewResultFormatter creates a formatter
func NewResultFormatter(log *slog.Logger) *ResultFormatter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ResultFormatter{log: log.With("component", "ResultFormatter")}
}

// FormatResult renders v according to the declared output parameter
func (f *ResultFormatter) FormatResult(v xdr.ScVal, output *domain.FunctionParameter) (out string) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("recovered while formatting result", "panic", r)
			out = formatFailure(fmt.Errorf("%v", r))
		}
	}()

	if output == nil || strings.TrimSpace(output.Type) == "" {
		return MissingSchemaMarker
	}
	if v.Type == xdr.ScValTypeScvVoid {
		return VoidMarker
	}

	native, err := ScValToNative(v)
	if err != nil {
		f.log.Debug("result decode failed", "type", output.Type, "error", err)
		return formatFailure(err)
	}
	rendered, err := renderNative(native)
	if err != nil {
		return formatFailure(err)
	}
	return rendered
}

// FormatResultXDR decodes a base64 XDR ScVal before formatting it
func (f *ResultFormatter) FormatResultXDR(b64 string, output *domain.FunctionParameter) string {
	if output == nil || strings.TrimSpace(output.Type) == "" {
		return MissingSchemaMarker
	}
	var v xdr.ScVal
	if err := xdr.SafeUnmarshalBase64(strings.TrimSpace(b64), &v); err != nil {
		return formatFailure(fmt.Errorf("invalid result XDR: %w", err))
	}
	return f.FormatResult(v, output)
}

func formatFailure(err error) string {
	return fmt.Sprintf("[Error: Failed to format result: %s]", err.Error())
}

func renderNative(native any) (string, error) {
	switch v := native.(type) {
	case nil:
		return VoidMarker, nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case *big.Int:
		return v.String(), nil
	case []byte:
		return hexutil.Encode(v), nil
	case []any:
		if len(v) == 0 {
			return "[]", nil
		}
		return marshalJSON(jsonable(v), !isFlat(v))
	case map[string]any:
		if len(v) == 0 {
			return "{}", nil
		}
		return marshalJSON(jsonable(v), true)
	}
	return marshalJSON(native, false)
}

// isFlat reports whether no element is itself a collection
func isFlat(items []any) bool {
	for _, item := range items {
		switch item.(type) {
		case []any, map[string]any:
			return false
		}
	}
	return true
}

// jsonable rewrites values encoding/json would render lossily: big
// integers become decimal strings and bytes become 0x hex.
func jsonable(native any) any {
	switch v := native.(type) {
	case *big.Int:
		return v.String()
	case []byte:
		return hexutil.Encode(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = jsonable(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = jsonable(item)
		}
		return out
	}
	return native
}

func marshalJSON(v any, indent bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

package soroban

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// ScValToNative converts a wire value into plain Go values for display:
// nil, bool, uint32, int32, *big.Int, []byte, string, []any and
// map[string]any. Addresses come back as strkeys.
func ScValToNative(v xdr.ScVal) (any, error) {
	switch v.Type {
	case xdr.ScValTypeScvVoid:
		return nil, nil
	case xdr.ScValTypeScvBool:
		if v.B == nil {
			return nil, missingArm(v.Type)
		}
		return *v.B, nil
	case xdr.ScValTypeScvU32:
		if v.U32 == nil {
			return nil, missingArm(v.Type)
		}
		return uint32(*v.U32), nil
	case xdr.ScValTypeScvI32:
		if v.I32 == nil {
			return nil, missingArm(v.Type)
		}
		return int32(*v.I32), nil
	case xdr.ScValTypeScvU64:
		if v.U64 == nil {
			return nil, missingArm(v.Type)
		}
		return new(big.Int).SetUint64(uint64(*v.U64)), nil
	case xdr.ScValTypeScvI64:
		if v.I64 == nil {
			return nil, missingArm(v.Type)
		}
		return big.NewInt(int64(*v.I64)), nil
	case xdr.ScValTypeScvTimepoint:
		if v.Timepoint == nil {
			return nil, missingArm(v.Type)
		}
		return new(big.Int).SetUint64(uint64(*v.Timepoint)), nil
	case xdr.ScValTypeScvDuration:
		if v.Duration == nil {
			return nil, missingArm(v.Type)
		}
		return new(big.Int).SetUint64(uint64(*v.Duration)), nil
	case xdr.ScValTypeScvU128:
		if v.U128 == nil {
			return nil, missingArm(v.Type)
		}
		return uint128ToBig(*v.U128), nil
	case xdr.ScValTypeScvI128:
		if v.I128 == nil {
			return nil, missingArm(v.Type)
		}
		return int128ToBig(*v.I128), nil
	case xdr.ScValTypeScvU256:
		if v.U256 == nil {
			return nil, missingArm(v.Type)
		}
		return uint256ToBig(*v.U256), nil
	case xdr.ScValTypeScvI256:
		if v.I256 == nil {
			return nil, missingArm(v.Type)
		}
		return int256ToBig(*v.I256), nil
	case xdr.ScValTypeScvBytes:
		if v.Bytes == nil {
			return nil, missingArm(v.Type)
		}
		return []byte(*v.Bytes), nil
	case xdr.ScValTypeScvString:
		if v.Str == nil {
			return nil, missingArm(v.Type)
		}
		return string(*v.Str), nil
	case xdr.ScValTypeScvSymbol:
		if v.Sym == nil {
			return nil, missingArm(v.Type)
		}
		return string(*v.Sym), nil
	case xdr.ScValTypeScvAddress:
		if v.Address == nil {
			return nil, missingArm(v.Type)
		}
		return addressString(*v.Address)
	case xdr.ScValTypeScvVec:
		if v.Vec == nil || *v.Vec == nil {
			return []any{}, nil
		}
		elems := **v.Vec
		out := make([]any, len(elems))
		for i, elem := range elems {
			native, err := ScValToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("vec[%d]: %w", i, err)
			}
			out[i] = native
		}
		return out, nil
	case xdr.ScValTypeScvMap:
		if v.Map == nil || *v.Map == nil {
			return map[string]any{}, nil
		}
		entries := **v.Map
		out := make(map[string]any, len(entries))
		for i, entry := range entries {
			key, err := ScValToNative(entry.Key)
			if err != nil {
				return nil, fmt.Errorf("map key %d: %w", i, err)
			}
			val, err := ScValToNative(entry.Val)
			if err != nil {
				return nil, fmt.Errorf("map value %d: %w", i, err)
			}
			out[keyString(key)] = val
		}
		return out, nil
	case xdr.ScValTypeScvError:
		if v.Error == nil {
			return nil, missingArm(v.Type)
		}
		return scErrorString(*v.Error), nil
	case xdr.ScValTypeScvLedgerKeyContractInstance:
		return "LedgerKeyContractInstance", nil
	case xdr.ScValTypeScvContractInstance:
		return "ContractInstance", nil
	}
	return nil, fmt.Errorf("unsupported wire type %s", v.Type)
}

func missingArm(t xdr.ScValType) error {
	return fmt.Errorf("malformed %s value: union arm is empty", t)
}

// keyString renders a native map key as a JSON object key
func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	s, err := marshalJSON(jsonable(key), false)
	if err != nil {
		return fmt.Sprint(key)
	}
	return s
}

func scErrorString(e xdr.ScError) string {
	kind := strings.TrimPrefix(e.Type.String(), "ScErrorTypeSce")
	if e.Type == xdr.ScErrorTypeSceContract && e.ContractCode != nil {
		return fmt.Sprintf("Error(%s, #%d)", kind, uint32(*e.ContractCode))
	}
	if e.Code != nil {
		return fmt.Sprintf("Error(%s, %s)", kind, strings.TrimPrefix(e.Code.String(), "ScErrorCodeScec"))
	}
	return fmt.Sprintf("Error(%s)", kind)
}

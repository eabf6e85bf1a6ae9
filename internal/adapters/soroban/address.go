package soroban

import (
	"fmt"

	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// IsValidAddress reports whether s is a G… account or C… contract strkey
func IsValidAddress(s string) bool {
	_, err := newScAddress(s)
	return err == nil
}

func newScAddress(s string) (xdr.ScAddress, error) {
	version, err := strkey.Version(s)
	if err != nil {
		return xdr.ScAddress{}, err
	}

	switch version {
	case strkey.VersionByteAccountID:
		var accountID xdr.AccountId
		if err := accountID.SetAddress(s); err != nil {
			return xdr.ScAddress{}, err
		}
		return xdr.ScAddress{
			Type:      xdr.ScAddressTypeScAddressTypeAccount,
			AccountId: &accountID,
		}, nil
	case strkey.VersionByteContract:
		raw, err := strkey.Decode(strkey.VersionByteContract, s)
		if err != nil {
			return xdr.ScAddress{}, err
		}
		var contractID xdr.ContractId
		copy(contractID[:], raw)
		return xdr.ScAddress{
			Type:       xdr.ScAddressTypeScAddressTypeContract,
			ContractId: &contractID,
		}, nil
	default:
		return xdr.ScAddress{}, fmt.Errorf("unsupported strkey version %v", version)
	}
}

// addressString renders an ScAddress back to its strkey form
func addressString(addr xdr.ScAddress) (string, error) {
	switch addr.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		if addr.AccountId == nil {
			return "", fmt.Errorf("account address without account id")
		}
		return addr.AccountId.GetAddress()
	case xdr.ScAddressTypeScAddressTypeContract:
		if addr.ContractId == nil {
			return "", fmt.Errorf("contract address without contract id")
		}
		id := *addr.ContractId
		return strkey.Encode(strkey.VersionByteContract, id[:])
	default:
		return "", fmt.Errorf("unsupported address type %s", addr.Type)
	}
}

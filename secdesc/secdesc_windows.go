package secdesc

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// Load retrieves the parts of the security descriptor named
// by info for the file or directory at path.
func Load(
	path string, info windows.SECURITY_INFORMATION,
) (*windows.SECURITY_DESCRIPTOR, error) {
	return windows.GetNamedSecurityInfo(
		path, windows.SE_FILE_OBJECT, info,
	)
}

// Owner returns the owner of the file as "DOMAIN\account".
//
// When the SID no longer maps to an account, for example
// after the account has been removed, its string form is
// returned instead.
func Owner(path string) (string, error) {
	sd, err := Load(path, windows.OWNER_SECURITY_INFORMATION)
	if err != nil {
		return "", err
	}
	owner, _, err := sd.Owner()
	if err != nil {
		return "", errors.Wrap(err, "security descriptor owner")
	}
	if owner == nil {
		return "", nil
	}
	account, domain, _, err := owner.LookupAccount("")
	if err != nil {
		return owner.String(), nil
	}
	if domain == "" {
		return account, nil
	}
	return domain + `\` + account, nil
}

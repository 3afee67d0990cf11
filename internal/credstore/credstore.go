// Package credstore persists cloud-upload secrets (R2 access keys,
// the Google Drive OAuth2 refresh token) in Windows Credential
// Manager instead of the JSON config file, the way the teacher
// declared but never wired this same dependency for.
package credstore

import (
	"fmt"

	"github.com/danieljoos/wincred"
)

const targetPrefix = "BreachCore:"

// Put writes secret under name, overwriting any existing entry.
func Put(name, secret string) error {
	cred := wincred.NewGenericCredential(targetPrefix + name)
	cred.CredentialBlob = []byte(secret)
	if err := cred.Write(); err != nil {
		return fmt.Errorf("credstore: write %s: %w", name, err)
	}
	return nil
}

// Get reads the secret stored under name. ok is false if nothing is
// stored there.
func Get(name string) (secret string, ok bool, err error) {
	cred, err := wincred.GetGenericCredential(targetPrefix + name)
	if err != nil {
		return "", false, nil
	}
	return string(cred.CredentialBlob), true, nil
}

// Delete removes the secret stored under name. Deleting a name that
// doesn't exist is not an error.
func Delete(name string) error {
	cred, err := wincred.GetGenericCredential(targetPrefix + name)
	if err != nil {
		return nil
	}
	if err := cred.Delete(); err != nil {
		return fmt.Errorf("credstore: delete %s: %w", name, err)
	}
	return nil
}

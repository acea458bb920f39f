package messaging

import "errors"

// ErrAuthentication indicates the SMTP server rejected the configured
// credentials. Distinct from core.ErrCredentialMissing, which means the
// credentials were never configured at all.
var ErrAuthentication = errors.New("smtp authentication rejected")

package storage

import (
	"strings"

	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/errors"

	"gocloud.dev/gcerrors"
)

// ClassifyError maps a bucket driver error onto the portal's storage error
// vocabulary. Network-shaped failures with no usable detail usually mean the
// bucket rejected the preflight, so they carry the CORS hint.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	switch gcerrors.Code(err) {
	case gcerrors.PermissionDenied:
		return domainerrors.ErrStorageUnauthorized.WrapMessage(err.Error())
	case gcerrors.Unknown:
		if corsSuspected(err) {
			return domainerrors.ErrStorageCORS.WrapMessage(err.Error())
		}

		return domainerrors.ErrStorageUnknown.WrapMessage(err.Error())
	default:
		return domainerrors.ErrStorageGeneral.WrapMessage(err.Error())
	}
}

// IsCORSSuspected reports whether a classified upload error should raise the
// cross-origin misconfiguration hint for the caller.
func IsCORSSuspected(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == domainerrors.ErrStorageCORS.ErrorCode()
}

func corsSuspected(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "cors") ||
		strings.Contains(msg, "preflight") ||
		strings.Contains(msg, "access-control-allow-origin")
}

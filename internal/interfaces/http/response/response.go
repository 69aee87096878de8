package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "wallet-manager.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping known sentinel errors to their
// HTTP status and keeping the cause message intact.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Status, gin.H{
		"status":  appErr.Status,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrWalletNotFound):
		return domainerrors.NotFound("Wallet not found")
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Resource not found")
	case errors.Is(err, domainerrors.ErrInvalidKey):
		return domainerrors.BadRequest("Invalid private key")
	case errors.Is(err, domainerrors.ErrAddressMismatch):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Wallet with this address already exists")
	default:
		return domainerrors.InternalError(err)
	}
}

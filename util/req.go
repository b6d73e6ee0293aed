package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recnet/recnet-be/model"
)

type HTTPError struct {
	Status  int
	Kind    model.ErrorKind
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

type HandlerOpts struct {
}

type handlerFunc func(c *gin.Context) (interface{}, *HTTPError)

// HandlerWrapper adapts a handler returning (data, *HTTPError) into a gin
// handler emitting the standard response envelope.
func HandlerWrapper(handler handlerFunc, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			c.JSON(httpErr.Status, gin.H{
				"success": false,
				"kind":    httpErr.Kind,
				"message": httpErr.Message,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
		})
	}
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Kind:    model.KindInvalidInput,
		Message: err.Error(),
	}
}

var kindToStatus = map[model.ErrorKind]int{
	model.KindInvalidInput: http.StatusBadRequest,
	model.KindUnauthorized: http.StatusUnauthorized,
	model.KindNotFound:     http.StatusNotFound,
	model.KindConflict:     http.StatusConflict,
	model.KindTransient:    http.StatusInternalServerError,
}

// BuildHTTPErr maps a domain error onto a status by kind. Transient store
// errors keep a generic message; the wrapped cause is for logs only.
func BuildHTTPErr(err error) *HTTPError {
	kind := model.KindOf(err)
	status, ok := kindToStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	message := "store error"
	var appErr *model.AppError
	if errors.As(err, &appErr) && kind != model.KindTransient {
		message = appErr.Message
	}
	return &HTTPError{
		Status:  status,
		Kind:    kind,
		Message: message,
	}
}

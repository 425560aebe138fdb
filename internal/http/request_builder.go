package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ap-savings-service/internal/domain/dto"
	"github.com/guttosm/ap-savings-service/internal/i18n"
	"github.com/guttosm/ap-savings-service/internal/middleware"
)

var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

// BindQuery binds the query string into a new T.
func BindQuery[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BindJSON binds the JSON body into a new T.
func BindJSON[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ResponseBuilder writes the JSON envelopes of the API.
// Envelopes come from a sync.Pool; gin serializes synchronously so they are returned right after writing.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)

	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error aborts with an ErrorResponse whose message is looked up by messageKey.
// err, when non-nil, is attached to the context for ErrorHandler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ErrorWithDetails is Error with a details map attached to the response.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.T(messageKey)
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)

	putErrorResponse(resp)
}

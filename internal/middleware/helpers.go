// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// MustGetCustomerID gets the customer ID from context or panics
func MustGetCustomerID(c *gin.Context) string {
	customerID, exists := GetCustomerID(c)
	if !exists {
		panic("customer_id not found in context")
	}
	return customerID
}

// MustGetEmail gets the account email from context or panics
func MustGetEmail(c *gin.Context) string {
	email, exists := GetEmail(c)
	if !exists {
		panic("email not found in context")
	}
	return email
}

// MustGetJTI gets JTI from context or panics
func MustGetJTI(c *gin.Context) string {
	jti, exists := GetJTI(c)
	if !exists {
		panic("jti not found in context")
	}
	return jti
}

// IsAuthenticated checks if request is authenticated
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get("customer_id")
	return exists
}

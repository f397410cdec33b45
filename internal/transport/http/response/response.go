// Package response holds the two JSON error shapes this API speaks.
// Handlers answer failures with {"error": ...} while the auth middleware
// answers with {"message": ...}; the split is part of the wire contract
// and is kept intentionally.
package response

import "github.com/gin-gonic/gin"

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}

func Message(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"message": message})
}

package handler

import (
	"net/http"

	"hexconv-service/internal/web"

	"github.com/gin-gonic/gin"
)

const DefaultName = "world"

// HelloWorld greets the default name on / and /index.html.
func HelloWorld(c *gin.Context) {
	renderGreeting(c, DefaultName)
}

// HelloName greets whatever the :name segment holds. The value is not
// validated; the template escapes it.
func HelloName(c *gin.Context) {
	renderGreeting(c, c.Param("name"))
}

func renderGreeting(c *gin.Context, name string) {
	c.HTML(http.StatusOK, web.IndexTemplate, gin.H{"Name": name})
}

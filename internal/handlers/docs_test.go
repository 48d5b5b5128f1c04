package handlers_test

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/SscSPs/household_ledger/cmd/docs"
)

var ginParam = regexp.MustCompile(`:(\w+)`)

// The swagger document must describe every authenticated and public API route.
func (suite *HandlerTestSuite) TestSwaggerDocsCoverRoutes() {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	suite.Require().NoError(json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	checked := 0
	for _, route := range suite.router.Routes() {
		if !strings.HasPrefix(route.Path, "/api/") {
			continue
		}
		path := ginParam.ReplaceAllString(strings.TrimPrefix(route.Path, "/api"), "{$1}")
		methods, ok := doc.Paths[path]
		if suite.Truef(ok, "route %s %s is not documented", route.Method, route.Path) {
			_, ok = methods[strings.ToLower(route.Method)]
			suite.Truef(ok, "method %s of %s is not documented", route.Method, path)
		}
		checked++
	}
	suite.GreaterOrEqual(checked, 19)
}

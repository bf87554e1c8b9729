/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package introspection fetches a live GraphQL API's schema over HTTP
using the standard introspection query and resolves it the same way a
parsed SDL file would be.
*/
package introspection

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/krotik/gqltool/internal/ast"
	"github.com/krotik/gqltool/internal/gqljson"
	"github.com/krotik/gqltool/internal/schema"
)

/*
Query is the fixed introspection document POSTed to the target API
(spec.md §6 "fetch introspection JSON via HTTP POST with a fixed
introspection query").
*/
const Query = `
query IntrospectionQuery {
  __schema {
    queryType { name }
    mutationType { name }
    subscriptionType { name }
    types { ...FullType }
    directives {
      name
      description
      locations
      isRepeatable
      args { ...InputValue }
    }
  }
}

fragment FullType on __Type {
  kind
  name
  description
  fields(includeDeprecated: true) {
    name
    description
    args { ...InputValue }
    type { ...TypeRef }
  }
  inputFields { ...InputValue }
  interfaces { name }
  enumValues(includeDeprecated: true) {
    name
    description
  }
  possibleTypes { name }
}

fragment InputValue on __InputValue {
  name
  description
  type { ...TypeRef }
}

fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
              ofType {
                kind
                name
              }
            }
          }
        }
      }
    }
  }
}
`

type graphqlRequest struct {
	Query string `json:"query"`
}

/*
FetchSchema POSTs the fixed introspection query to url and resolves the
response into a schema.ServerSchema. A non-200 response or malformed
body is reported wrapped with its HTTP/decoding context; the CLI layer
maps that to the process exit code (spec.md §6 "Exit code 1 on HTTP
status != 200 or parse error").
*/
func FetchSchema(ctx context.Context, httpClient *http.Client, url string) (*schema.ServerSchema, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	body, err := json.Marshal(graphqlRequest{Query: Query})
	if err != nil {
		return nil, errors.Wrap(err, "encoding introspection request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "building introspection request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending introspection request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading introspection response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("expected 200 status code, received %d", resp.StatusCode)
	}

	file, err := gqljson.DecodeIntrospection(respBody)
	if err != nil {
		return nil, errors.Wrap(err, "decoding introspection response")
	}

	sch, err := schema.Resolve([]*ast.FileNodes{file}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "resolving introspected schema")
	}
	return &sch.Server, nil
}

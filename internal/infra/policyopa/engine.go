package policyopa

import (
	"context"

	"github.com/open-policy-agent/opa/rego"

	"github.com/technohippy/aiid/internal/domain"
)

const defaultQuery = "data.aiid.authz.allow"

// defaultPolicy grants admins everything and incident editors the
// promotion/linking mutations. Operators can replace it with a bundle via
// POLICY_BUNDLE_PATH.
const defaultPolicy = `package aiid.authz

import rego.v1

default allow := false

allow if "admin" in input.roles

allow if {
	"incident_editor" in input.roles
	input.action in {"promote", "link_reports"}
}
`

type Engine struct {
	query rego.PreparedEvalQuery
}

func NewEngine(ctx context.Context, bundlePath string) (*Engine, error) {
	opts := []func(*rego.Rego){
		rego.Query(defaultQuery),
		rego.StrictBuiltinErrors(true),
	}
	if bundlePath != "" {
		opts = append(opts, rego.Load([]string{bundlePath}, nil))
	} else {
		opts = append(opts, rego.Module("authz.rego", defaultPolicy))
	}
	prepared, err := rego.New(opts...).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}
	return &Engine{query: prepared}, nil
}

func (e *Engine) Authorize(ctx context.Context, input domain.AuthzInput) (domain.AuthzDecision, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return domain.AuthzDecision{}, err
	}
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return domain.AuthzDecision{Allow: false}, nil
	}
	allow, _ := results[0].Expressions[0].Value.(bool)
	return domain.AuthzDecision{Allow: allow}, nil
}

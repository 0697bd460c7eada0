package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/pharaohs"
	"github.com/goliatone/go-gateway/users"
)

var (
	_ gocmd.Querier[Message[users.GetUserInput], core.Envelope[users.User]]             = (*ResolveQuery[users.GetUserInput, users.User])(nil)
	_ gocmd.Querier[Message[pharaohs.GetPharaohInput], core.Envelope[pharaohs.Pharaoh]] = (*ResolveQuery[pharaohs.GetPharaohInput, pharaohs.Pharaoh])(nil)
)

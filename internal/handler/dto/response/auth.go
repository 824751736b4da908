package response

import (
	"carreserve/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                      `json:"accessToken"`
	User        *queries.AuthorizedUserView `json:"user"`
}

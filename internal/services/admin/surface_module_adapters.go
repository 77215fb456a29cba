package admin

import (
	"net/http"

	productsmodule "github.com/louisbranch/storeadmin/internal/services/admin/module/products"
	teammodule "github.com/louisbranch/storeadmin/internal/services/admin/module/team"
)

type teamModuleService struct {
	handler *Handler
}

func newTeamModuleService(h *Handler) teammodule.Service {
	if h == nil {
		return nil
	}
	return teamModuleService{handler: h}
}

func (s teamModuleService) HandleTeamPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleTeamPage(w, r)
}

func (s teamModuleService) HandleTeamTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleTeamTable(w, r)
}

func (s teamModuleService) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	s.handler.handleTeamDismiss(w, r)
}

func (s teamModuleService) HandleUserEdit(w http.ResponseWriter, r *http.Request, userID string) {
	s.handler.handleUserEdit(w, r, userID)
}

func (s teamModuleService) HandleUserSave(w http.ResponseWriter, r *http.Request, userID string) {
	s.handler.handleUserSave(w, r, userID)
}

func (s teamModuleService) HandleUserDelete(w http.ResponseWriter, r *http.Request, userID string) {
	s.handler.handleUserDelete(w, r, userID)
}

func (s teamModuleService) HandleInviteDelete(w http.ResponseWriter, r *http.Request, inviteID string) {
	s.handler.handleInviteDelete(w, r, inviteID)
}

func (s teamModuleService) HandleInviteResend(w http.ResponseWriter, r *http.Request, inviteID string) {
	s.handler.handleInviteResend(w, r, inviteID)
}

func (s teamModuleService) HandleInviteCopyLink(w http.ResponseWriter, r *http.Request, inviteID string) {
	s.handler.handleInviteCopyLink(w, r, inviteID)
}

type productsModuleService struct {
	handler *Handler
}

func newProductsModuleService(h *Handler) productsmodule.Service {
	if h == nil {
		return nil
	}
	return productsModuleService{handler: h}
}

func (s productsModuleService) HandleProductsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleProductsPage(w, r)
}

func (s productsModuleService) HandleProductPage(w http.ResponseWriter, r *http.Request, productID string) {
	s.handler.handleProductPage(w, r, productID)
}

func (s productsModuleService) HandleProductUpdate(w http.ResponseWriter, r *http.Request, productID string) {
	s.handler.handleProductUpdate(w, r, productID)
}

func (s productsModuleService) HandleProductStatus(w http.ResponseWriter, r *http.Request, productID string) {
	s.handler.handleProductStatus(w, r, productID)
}

func (s productsModuleService) HandleProductDelete(w http.ResponseWriter, r *http.Request, productID string) {
	s.handler.handleProductDelete(w, r, productID)
}

func (s productsModuleService) HandleVariantCreate(w http.ResponseWriter, r *http.Request, productID string) {
	s.handler.handleVariantCreate(w, r, productID)
}

func (s productsModuleService) HandleVariantUpdate(w http.ResponseWriter, r *http.Request, productID string, variantID string) {
	s.handler.handleVariantUpdate(w, r, productID, variantID)
}

func (s productsModuleService) HandleVariantDelete(w http.ResponseWriter, r *http.Request, productID string, variantID string) {
	s.handler.handleVariantDelete(w, r, productID, variantID)
}

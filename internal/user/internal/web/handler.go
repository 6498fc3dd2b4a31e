package web

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/tastebook/internal/user/internal/domain"
	"github.com/ecodeclub/tastebook/internal/user/internal/errs"
	"github.com/ecodeclub/tastebook/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	minPasswordLen = 6
	maxNicknameLen = 32
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignupReq](h.Signup))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.POST("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return invalidInputResult, nil
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLen ||
		utf8.RuneCountInString(req.Nickname) > maxNicknameLen {
		return invalidInputResult, nil
	}
	u, err := h.userSvc.Signup(ctx, domain.User{
		Email:    email,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		return ginx.Result{Code: errs.EmailConflict.Code, Msg: errs.EmailConflict.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return h.startSession(ctx, u)
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidUserOrPassword):
		return ginx.Result{Code: errs.InvalidCredential.Code, Msg: errs.InvalidCredential.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return h.startSession(ctx, u)
}

// startSession access token 由 token carrier 放在响应头里面
func (h *Handler) startSession(ctx *ginx.Context, u domain.User) (ginx.Result, error) {
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"nickname": u.Nickname,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
			Code: errs.InvalidToken.Code,
			Msg:  errs.InvalidToken.Msg,
		})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	if utf8.RuneCountInString(req.Nickname) > maxNicknameLen {
		return invalidInputResult, nil
	}
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       sess.Claims().Uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

package httpserver

import (
	"context"

	"golang.org/x/time/rate"

	chatHTTP "chatbot-api/internal/chat/delivery/http"
	chatUC "chatbot-api/internal/chat/usecase"
	"chatbot-api/internal/fileextract"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(srv.gin, h)
func (srv *HTTPServer) setupChatDomain(ctx context.Context) error {
	extractor := fileextract.New(srv.cfg.Upload.MaxImageDimension)

	var limiter *rate.Limiter
	if perMin := srv.cfg.RateLimit.OutboundPerMin; perMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(perMin)/60, perMin)
	}

	uc := chatUC.New(srv.l, srv.llm, srv.searcher, extractor, limiter)

	h := chatHTTP.New(srv.l, uc, srv.cfg.Upload.MaxFileBytes)

	chatHTTP.RegisterRoutes(srv.gin, h)

	srv.l.Infof(ctx, "Chat domain registered at POST /chat and POST /chat-with-files")
	return nil
}

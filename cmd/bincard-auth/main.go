package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/mehmetcepni/bincard-auth/config"
	"github.com/mehmetcepni/bincard-auth/internal/auth/domain"
	"github.com/mehmetcepni/bincard-auth/internal/auth/flow"
	"github.com/mehmetcepni/bincard-auth/internal/auth/gateway"
	"github.com/mehmetcepni/bincard-auth/internal/auth/session"
	"github.com/mehmetcepni/bincard-auth/pkg/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.Env)
	defer logger.Sync()

	ctx := context.Background()

	var store domain.TokenStore = session.NewMemoryStore()
	if cfg.RedisURL != "" {
		client, err := session.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal("redis unavailable", zap.Error(err))
		}
		defer client.Close()
		store = session.NewRedisStore(client)
	}

	finalizer := session.NewFinalizer(store, nil, logger)
	gw := gateway.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	meta := domain.DeviceMetadata{
		Descriptor: "bincard-auth-cli",
		AppVersion: cfg.AppVersion,
		Platform:   cfg.Platform,
	}

	if finalizer.IsAuthenticated(ctx) {
		fmt.Println("Zaten giriş yapılmış.")
		return
	}

	login := flow.NewLoginFlow(gw, finalizer, meta, logger)
	in := bufio.NewReader(os.Stdin)

	phone := prompt(in, "Telefon (0XXXXXXXXXX): ")
	password := prompt(in, "Şifre: ")

	res, err := login.Submit(ctx, phone, password)
	if err != nil {
		fmt.Println("Hata:", err)
		os.Exit(1)
	}
	run(ctx, in, login, res)
}

func run(ctx context.Context, in *bufio.Reader, login *flow.LoginFlow, res flow.Result) {
	for {
		if res.Notice != "" {
			fmt.Println(res.Notice)
		}
		if res.Message != "" {
			fmt.Println(res.Message)
		}

		switch res.State {
		case flow.StateSuccess:
			fmt.Println("Giriş başarılı.")
			return

		case flow.StateVerificationRequired:
			code := prompt(in, "Doğrulama kodu (boş: yeniden gönder): ")
			var err error
			if code == "" {
				res, err = login.ResendCode(ctx)
			} else {
				res, err = login.SubmitCode(ctx, code)
			}
			if err != nil {
				fmt.Println("Hata:", err)
			}

		case flow.StateAccountFrozenRecovery:
			fmt.Println("Hesabınız dondurulmuş. Yeniden aktifleştiriliyor.")
			recovery, ok := login.Recovery()
			if !ok {
				return
			}
			req := recovery.Request()
			req.Note = prompt(in, "Not (isteğe bağlı): ")
			var err error
			res, err = recovery.Submit(ctx, req)
			if err != nil {
				fmt.Println("Hata:", err)
				return
			}

		case flow.StateFailed:
			fmt.Println("Giriş başarısız.")
			return

		default:
			return
		}
	}
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

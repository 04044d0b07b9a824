// Command onboard walks a merchant through the Pivota onboarding flow from
// the terminal: register, wait for the KYB decision, connect a PSP, and check
// status along the way. State is cached in a local session file so the flow
// survives restarts and retries stay idempotent.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"pivota/client"
	"pivota/internal/domain"
)

func main() {
	log.SetFlags(0)

	baseURL := flag.String("url", envOr("PIVOTA_URL", "http://localhost:8080"), "onboarding API base URL")
	sessionPath := flag.String("session", defaultSessionPath(), "session file path")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	sess, err := client.OpenSession(*sessionPath)
	if err != nil {
		log.Fatalf("open session: %v", err)
	}
	c := client.New(*baseURL, client.WithSession(sess))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "register":
		err = cmdRegister(ctx, c, args)
	case "status":
		err = cmdStatus(ctx, c, args)
	case "wait":
		err = cmdWait(ctx, c, args)
	case "connect-psp":
		err = cmdConnectPSP(ctx, c, args)
	case "upload":
		err = cmdUpload(ctx, c, args)
	case "approve":
		err = cmdApprove(ctx, c, args)
	case "reject":
		err = cmdReject(ctx, c, args)
	case "list":
		err = cmdList(ctx, c, args)
	case "events":
		err = cmdEvents(ctx, c, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func cmdRegister(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "business name (required)")
	storeURL := fs.String("store-url", "", "store URL (required)")
	region := fs.String("region", "", "region code, e.g. US (required)")
	email := fs.String("email", "", "contact email (required)")
	phone := fs.String("phone", "", "contact phone")
	fs.Parse(args)

	reg, err := c.Register(ctx, client.RegisterInput{
		BusinessName: *name,
		StoreURL:     *storeURL,
		Region:       *region,
		ContactEmail: *email,
		ContactPhone: *phone,
	})
	if err != nil {
		return err
	}
	if reg.Deduplicated {
		fmt.Println("already registered (idempotent replay)")
	}
	fmt.Printf("merchant id:      %s\n", reg.MerchantID)
	fmt.Printf("confidence score: %.2f\n", reg.ConfidenceScore)
	fmt.Printf("full KYB due:     %s\n", reg.FullKYBDeadline.Format("2006-01-02"))
	if reg.AutoApproved {
		fmt.Println("verification will be approved automatically; run `onboard wait`")
	} else {
		fmt.Println("application queued for manual review; run `onboard wait`")
	}
	return nil
}

func cmdStatus(ctx context.Context, c *client.Client, args []string) error {
	rec, regressed, err := refreshOrStatus(ctx, c, args)
	if err != nil {
		return err
	}
	printStatus(rec)
	if regressed {
		fmt.Println("warning: onboarding moved backwards since last check; contact support")
	}
	return nil
}

func cmdWait(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("wait", flag.ExitOnError)
	id := fs.String("merchant", "", "merchant id (default: session)")
	attempts := fs.Uint64("attempts", 10, "max poll attempts")
	fs.Parse(args)

	merchantID, err := resolveMerchant(c, *id)
	if err != nil {
		return err
	}
	fmt.Println("waiting for KYB decision...")
	rec, err := c.WaitForDecision(ctx, merchantID, client.PollConfig{MaxAttempts: *attempts})
	if errors.Is(err, client.ErrStillPending) {
		fmt.Println("still pending; check back later with `onboard status`")
		return nil
	}
	if err != nil {
		return err
	}
	printStatus(rec)
	return nil
}

func cmdConnectPSP(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("connect-psp", flag.ExitOnError)
	id := fs.String("merchant", "", "merchant id (default: session)")
	pspType := fs.String("type", "", "psp type: stripe, adyen or shoppay (required)")
	sandboxKey := fs.String("sandbox-key", "", "PSP sandbox key (required)")
	fs.Parse(args)

	merchantID, err := resolveMerchant(c, *id)
	if err != nil {
		return err
	}
	res, err := c.SetupPSP(ctx, client.SetupPSPInput{
		MerchantID:    merchantID,
		PSPType:       *pspType,
		PSPSandboxKey: *sandboxKey,
	})
	if err != nil {
		return err
	}
	if res.AlreadyConnected {
		fmt.Println("PSP already connected")
		if res.APIKey != "" {
			fmt.Printf("api key (from session): %s\n", res.APIKey)
		}
		return nil
	}
	fmt.Println("PSP connected; onboarding complete")
	fmt.Printf("api key: %s\n", res.APIKey)
	fmt.Println("store this key now; it is shown only once")
	return nil
}

func cmdUpload(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	id := fs.String("merchant", "", "merchant id (default: session)")
	fs.Parse(args)
	if fs.NArg() < 1 {
		return errors.New("usage: onboard upload [-merchant ID] FILE...")
	}

	merchantID, err := resolveMerchant(c, *id)
	if err != nil {
		return err
	}
	for _, path := range fs.Args() {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		docs, err := c.UploadDocument(ctx, merchantID, filepath.Base(path), raw)
		if err != nil {
			return err
		}
		for _, d := range docs {
			fmt.Printf("uploaded %s (%d bytes, sha256 %s)\n", d.Filename, d.SizeBytes, d.SHA256)
		}
	}
	return nil
}

func cmdApprove(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: onboard approve MERCHANT_ID")
	}
	if err := c.Approve(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("approved")
	return nil
}

func cmdReject(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("reject", flag.ExitOnError)
	reason := fs.String("reason", "", "rejection reason")
	fs.Parse(args)
	if fs.NArg() < 1 {
		return errors.New("usage: onboard reject [-reason R] MERCHANT_ID")
	}
	if err := c.Reject(ctx, fs.Arg(0), *reason); err != nil {
		return err
	}
	fmt.Println("rejected")
	return nil
}

func cmdList(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	status := fs.String("status", "", "filter by kyc status")
	limit := fs.Int("limit", 50, "page size")
	offset := fs.Int("offset", 0, "page offset")
	fs.Parse(args)

	rows, err := c.ListMerchants(ctx, *status, *limit, *offset)
	if err != nil {
		return err
	}
	for _, m := range rows {
		psp := "-"
		if m.PSPConnected {
			psp = "psp"
		}
		fmt.Printf("%s  %-24s %-4s %-22s %.2f  %s\n",
			m.MerchantID, m.BusinessName, m.Region, m.KYCStatus, m.ConfidenceScore, psp)
	}
	return nil
}

func cmdEvents(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	id := fs.String("merchant", "", "merchant id (default: session)")
	limit := fs.Int("limit", 50, "max events")
	fs.Parse(args)

	merchantID, err := resolveMerchant(c, *id)
	if err != nil {
		return err
	}
	events, err := c.Events(ctx, merchantID, *limit)
	if err != nil {
		return err
	}
	for _, e := range events {
		fmt.Printf("%s  %-20s %s\n", e.CreatedAt.Format(time.RFC3339), e.Code, e.Detail)
	}
	return nil
}

// refreshOrStatus uses the session-aware Refresh when no explicit merchant id
// is given, so the cached last step stays current.
func refreshOrStatus(ctx context.Context, c *client.Client, args []string) (*client.StatusRecord, bool, error) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	id := fs.String("merchant", "", "merchant id (default: session)")
	fs.Parse(args)

	if *id == "" {
		return c.Refresh(ctx)
	}
	rec, err := c.Status(ctx, *id)
	return rec, false, err
}

func printStatus(rec *client.StatusRecord) {
	fmt.Printf("merchant:   %s (%s)\n", rec.MerchantID, rec.BusinessName)
	fmt.Printf("kyc status: %s\n", rec.KYCStatus)
	if rec.RejectReason != nil && *rec.RejectReason != "" {
		fmt.Printf("reason:     %s\n", *rec.RejectReason)
	}
	if rec.PSPConnected && rec.PSPType != nil {
		fmt.Printf("psp:        %s\n", *rec.PSPType)
	}
	step := rec.Step()
	fmt.Printf("step:       %s\n", step)
	switch step {
	case domain.StepRegister:
		fmt.Println("next:       run `onboard register`")
	case domain.StepKYC:
		fmt.Println("next:       wait for verification (`onboard wait`)")
	case domain.StepPSP:
		fmt.Println("next:       run `onboard connect-psp`")
	case domain.StepComplete:
		fmt.Println("next:       nothing; onboarding complete")
	case domain.StepInconsistent:
		fmt.Println("next:       account state inconsistent; contact support")
	}
}

func resolveMerchant(c *client.Client, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if s := c.Session(); s != nil && s.MerchantID() != "" {
		return s.MerchantID(), nil
	}
	return "", errors.New("no merchant id; pass -merchant or register first")
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pivota-session.json"
	}
	return filepath.Join(home, ".pivota", "session.json")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: onboard [flags] COMMAND [command flags]

Commands:
  register      create a merchant and start KYB review
  status        show current onboarding status and next step
  wait          poll until the KYB decision lands
  connect-psp   connect a payment provider and receive the API key
  upload        upload KYC documents
  approve       (admin) approve a merchant
  reject        (admin) reject a merchant
  list          (admin) list merchants
  events        show the merchant's system log

Flags:
`)
	flag.PrintDefaults()
}

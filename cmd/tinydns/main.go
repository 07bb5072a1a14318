// Command tinydns sends a single recursive DNS query to a server and prints
// the records in its response. It is an illustrative consumer of the
// internal/dns/wire codec, not part of the codec itself.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/matharman/tinydns/internal/dns/client"
	"github.com/matharman/tinydns/internal/dns/common/log"
	"github.com/matharman/tinydns/internal/dns/common/utils"
	"github.com/matharman/tinydns/internal/dns/config"
	"github.com/matharman/tinydns/internal/dns/domain"
	"github.com/matharman/tinydns/internal/dns/wire"
)

const (
	version = "0.1.0-dev"
	appName = "tinydns"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logging configuration error: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <server-ip> <name> [A|AAAA|CNAME|TXT|SRV]\n", appName)
		os.Exit(1)
	}

	server := os.Args[1]
	name := utils.CanonicalDNSName(os.Args[2])
	qtype := domain.RRTypeA
	if len(os.Args) == 4 {
		qtype = rrTypeFromString(os.Args[3])
	}

	log.Info(map[string]any{
		"version": version,
		"server":  server,
		"name":    name,
		"qtype":   qtype.String(),
	}, "starting query")

	c, err := client.New(client.Options{
		Server:  server,
		Port:    cfg.Port,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "failed to create client")
	}

	ctx := context.Background()
	id := uint16(rand.Intn(1 << 16))
	it, err := c.Query(ctx, id, name, qtype)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "query failed")
	}

	if it.Header().Flags.RCode != domain.RCode(0) {
		fmt.Printf("server returned %s\n", it.Header().Flags.RCode)
	}

	err = it.ForEach(func(rr wire.RR, section wire.Section) error {
		printRR(rr, section)
		return nil
	})
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "failed to decode response")
	}
}

// rrTypeFromString maps the CLI's record-type argument to an RRType,
// defaulting to A for anything it doesn't recognize, matching the original
// driver's behavior.
func rrTypeFromString(s string) domain.RRType {
	switch s {
	case "AAAA", "aaaa":
		return domain.RRTypeAAAA
	case "CNAME", "cname":
		return domain.RRTypeCNAME
	case "TXT", "txt":
		return domain.RRTypeTXT
	case "SRV", "srv":
		return domain.RRTypeSRV
	default:
		return domain.RRTypeA
	}
}

func printRR(rr wire.RR, section wire.Section) {
	fmt.Printf("%s: ", section)
	switch data := rr.Rdata.(type) {
	case wire.ARecord:
		fmt.Printf("A %s\n", net.IP(data.Addr[:]))
	case wire.AAAARecord:
		fmt.Printf("AAAA %s\n", net.IP(data.Addr[:]))
	case wire.CNAMERecord:
		fmt.Printf("CNAME %s\n", data.Target)
	case wire.TXTRecord:
		fmt.Printf("TXT %q\n", string(data.Text))
	case wire.SRVRecord:
		fmt.Printf("SRV %d %d %d %s\n", data.Priority, data.Weight, data.Port, data.Target)
	case wire.UnknownRecord:
		fmt.Printf("TYPE(%d) %s\n", rr.Type, hex.EncodeToString(data.Raw))
	}
}

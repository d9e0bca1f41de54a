package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/enid"
	"github.com/outofforest/logger"
	"github.com/outofforest/run"
)

// enid is an inspection tool for ENID values. It parses text identifiers
// back to their raw bytes and encodes caller-supplied bytes to the canonical
// text form. It never generates identifiers.
//
//	enid <text>...          print width and hex bytes of each identifier
//	enid -encode <hex>...   encode 5 or 10 hex-encoded bytes to text
func main() {
	run.New().Run(context.Background(), "enid", func(ctx context.Context) error {
		args := os.Args[1:]
		encodeMode := len(args) > 0 && args[0] == "-encode"
		if encodeMode {
			args = args[1:]
		}
		if len(args) == 0 {
			return errors.New("usage: enid [-encode] <value>...")
		}

		for _, arg := range args {
			var err error
			if encodeMode {
				err = printEncoded(arg)
			} else {
				err = printDecoded(arg)
			}
			if err != nil {
				logger.Get(ctx).Error("Invalid identifier",
					zap.String("value", arg), zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func printDecoded(s string) error {
	id, err := enid.ParseID(s)
	if err != nil {
		return err
	}
	raw := id.Bytes()
	fmt.Printf("%s\t%d-bit\t%x\n", id, len(raw)*8, raw)
	return nil
}

func printEncoded(s string) error {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return errors.WithStack(err)
	}
	switch len(raw) {
	case 5:
		fmt.Println(enid.ID40(raw))
	case 10:
		fmt.Println(enid.ID80(raw))
	default:
		return errors.Errorf("expected 5 or 10 bytes, got %d", len(raw))
	}
	return nil
}

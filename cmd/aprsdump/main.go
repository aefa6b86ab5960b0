// Command aprsdump decodes APRS packets from stdin (one textual TNC2
// line per invocation by default, or a raw AX.25 frame when --text=false)
// and prints the decoded record plus a round-trip re-encode.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/packetradio/aprs"
)

func main() {
	var (
		text    = pflag.BoolP("text", "t", true, "decode a textual TNC2 line rather than a binary AX.25 frame")
		verbose = pflag.BoolP("verbose", "v", false, "enable debug logging")
	)
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Fatal("reading stdin", "err", err)
	}

	var packet aprs.AprsPacket
	if *text {
		packet, err = aprs.DecodeTextual(trimNewline(input))
	} else {
		packet, err = aprs.DecodeAX25(input)
	}
	if err != nil {
		logger.Error("decode failed", "err", err)
		os.Exit(1)
	}

	fmt.Printf("from: %s\n", packet.From.Textual())
	for _, v := range packet.Via {
		fmt.Printf("via:  %s\n", v.EncodeTextual())
	}
	describeData(logger, packet.Data)

	if *text {
		out, err := packet.EncodeTextual()
		if err != nil {
			logger.Warn("re-encode failed", "err", err)
			return
		}
		fmt.Printf("re-encoded: %s\n", string(out))
	} else {
		out, err := packet.EncodeAX25()
		if err != nil {
			logger.Warn("re-encode failed", "err", err)
			return
		}
		fmt.Printf("re-encoded: %s\n", hex.EncodeToString(out))
	}
}

func describeData(logger *log.Logger, d aprs.AprsData) {
	switch d.Kind {
	case aprs.DataPosition:
		p := d.Position
		fmt.Printf("position: lat=%.6f lon=%.6f\n", p.Position.Latitude.Value(), p.Position.Longitude.Value())
		if p.Timestamp != nil {
			human, err := p.Timestamp.Human()
			if err != nil {
				logger.Debug("rendering timestamp", "err", err)
			} else {
				fmt.Printf("timestamp: %s\n", human)
			}
		}
	case aprs.DataMicE:
		m := d.MicE
		fmt.Printf("mic-e: lat=%.6f lon=%.6f speed=%d course=%d\n", m.Latitude.Value(), m.Longitude.Value(), m.Speed, m.Course)
	case aprs.DataMessage:
		fmt.Printf("message: to=%q text=%q\n", d.Message.Addressee, d.Message.Text)
	case aprs.DataStatus:
		fmt.Printf("status: compliant=%v comment=%q\n", d.Status.IsTimestampCompliant(), d.Status.Comment)
	case aprs.DataObject:
		fmt.Printf("object: name=%q live=%v\n", d.Object.Name, d.Object.Live)
	case aprs.DataItem:
		fmt.Printf("item: name=%q live=%v\n", d.Item.Name, d.Item.Live)
	default:
		logger.Warn("unknown data type, not re-encodable")
	}
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

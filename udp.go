package main

import (
	"fmt"
	"io"
	"net"
	"unicode/utf8"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Datagrams go out over IPv4 only, hostnames resolve to their A records.
const network = "udp4"

// Sender transmits a single message and reports whether it went out.
type Sender interface {
	Send(message string) bool
}

// UDPSender writes every message as one datagram to Destination and prints
// the outcome of each attempt to Out.
type UDPSender struct {
	Destination Destination
	Out         io.Writer
}

func NewUDPSender(dest Destination, out io.Writer) *UDPSender {
	return &UDPSender{Destination: dest, Out: out}
}

// Send never fails hard: any error is printed and reported as false.
func (s *UDPSender) Send(message string) bool {
	if err := sendDatagram(message, s.Destination); err != nil {
		slogger.Warnf("Error sending message to %s : %s", s.Destination, err)
		fmt.Fprintf(s.Out, "error: %s\n", err)
		return false
	}
	fmt.Fprintf(s.Out, "message sent: %s\n", message)
	return true
}

func encodePayload(message string) ([]byte, error) {
	if !utf8.ValidString(message) {
		return nil, errors.Errorf("message is not valid UTF-8: %q", message)
	}
	return []byte(message), nil
}

// sendDatagram opens a socket for this message alone and closes it on return.
func sendDatagram(message string, dest Destination) error {
	payload, err := encodePayload(message)
	if err != nil {
		return err
	}

	conn, err := net.Dial(network, dest.Address())
	if err != nil {
		return errors.Wrapf(err, "unable to open socket to %s", dest)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			slogger.Debugf("Error closing socket to %s : %s", dest, cerr)
		}
	}()

	if _, err = conn.Write(payload); err != nil {
		return errors.Wrapf(err, "unable to send datagram to %s", dest)
	}

	if slogger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		src, _ := conn.LocalAddr().(*net.UDPAddr)
		dst, _ := conn.RemoteAddr().(*net.UDPAddr)
		if size, err := DatagramSize(src, dst, payload); err != nil {
			slogger.Debugf("Unable to size datagram to %s : %s", dest, err)
		} else {
			slogger.Debugf("Sent %d payload bytes from %v to %v, IP datagram length %d", len(payload), src, dst, size)
		}
	}
	return nil
}

// wrapDatagram serializes payload into the IPv4/UDP packet the kernel puts on
// the wire for a send from src to dst.
func wrapDatagram(src, dst *net.UDPAddr, payload []byte) ([]byte, error) {
	if src == nil || dst == nil {
		return nil, errors.New("missing datagram endpoint")
	}
	if src.IP.To4() == nil || dst.IP.To4() == nil {
		return nil, errors.Errorf("not an IPv4 endpoint pair: %v -> %v", src, dst)
	}

	buf := gopacket.NewSerializeBuffer()
	serializeOpts := gopacket.SerializeOptions{
		FixLengths:       true,
		ComputeChecksums: true,
	}

	ip := &layers.IPv4{
		SrcIP:    src.IP.To4(),
		DstIP:    dst.IP.To4(),
		Protocol: layers.IPProtocolUDP,
		Version:  4,
		IHL:      5,
		TTL:      64,
	}
	udp := &layers.UDP{
		SrcPort: layers.UDPPort(src.Port),
		DstPort: layers.UDPPort(dst.Port),
	}
	if err := udp.SetNetworkLayerForChecksum(ip); err != nil {
		return nil, err
	}

	err := gopacket.SerializeLayers(buf, serializeOpts, ip, udp, gopacket.Payload(payload))
	if err != nil {
		return nil, errors.Wrap(err, "unable to serialize datagram")
	}
	return buf.Bytes(), nil
}

// DatagramSize returns the IPv4 datagram length for payload, headers included.
func DatagramSize(src, dst *net.UDPAddr, payload []byte) (int, error) {
	frame, err := wrapDatagram(src, dst, payload)
	if err != nil {
		return 0, err
	}
	return len(frame), nil
}

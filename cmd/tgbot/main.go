package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
)

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

const usage = "Usage: /coil <material> <awg> <wraps> <inner_mm> <volts>\nExample: /coil SS316L 26 5 3.0 3.7"

func main() {
	token := os.Getenv("TOKEN_BOT")
	if token == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message != nil {
				handleMessage(token, u.Message)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

func handleMessage(token string, msg *Message) {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/coil") {
		return
	}
	args := strings.Fields(strings.TrimPrefix(text, "/coil"))
	if len(args) < 5 {
		sendMessage(token, msg.Chat.ID, usage)
		return
	}

	// Material names may contain spaces; the last four tokens are numeric.
	n := len(args)
	mat := strings.Join(args[:n-4], " ")
	awg, err1 := strconv.Atoi(args[n-4])
	wrapsN, err2 := strconv.Atoi(args[n-3])
	inner, err3 := strconv.ParseFloat(args[n-2], 64)
	volts, err4 := strconv.ParseFloat(args[n-1], 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		sendMessage(token, msg.Chat.ID, usage)
		return
	}

	res, err := coil.Calculate(coil.Input{
		Material:        mat,
		GaugeAWG:        awg,
		Wraps:           wrapsN,
		InnerDiameterMM: inner,
		LegLengthMM:     6,
		VoltageV:        volts,
	})
	if err != nil {
		sendMessage(token, msg.Chat.ID, "Calculation error: "+err.Error())
		return
	}

	d := res.Display()
	reply := fmt.Sprintf("%s, AWG %d (%s mm), %d wraps on %.1f mm:\nResistance: %s Ohm\nCurrent: %s A\nPower: %s W",
		mat, awg, d.WireDiameterMM, wrapsN, inner, d.ResistanceOhm, d.CurrentA, d.PowerW)
	if res.ExceedsLimit {
		reply += "\nWarning: over the battery current limit!"
	}
	sendMessage(token, msg.Chat.ID, reply)
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendMessage(token string, chatID int64, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{"chat_id": chatID, "text": text}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}

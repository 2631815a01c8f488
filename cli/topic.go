// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/rdelfin/robotica"
)

var (
	// Frequency is the publish rate of topic pub, in hertz.
	Frequency float64 = 1
	// Repetitions bounds how many messages topic pub sends; 0 runs nonstop.
	Repetitions uint
)

var cmdTopics = []cobra.Command{
	{
		Use:   "sub <topic_name>",
		Short: "Print all messages published on a topic",
		Long:  `Subscribes untyped and prints every received message as JSON until interrupted or a receive fails.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsage(cmd.Use)
				return
			}

			sub, err := robotica.NewUntypedSubscriber(node, args[0])
			if err != nil {
				logError(err)
				return
			}
			defer sub.Close()

			opts := protojson.MarshalOptions{UseProtoNames: true}
			for {
				msg, err := sub.Recv(cmd.Context())
				if err != nil {
					logError(err)
					return
				}
				raw, err := opts.Marshal(msg.Message)
				if err != nil {
					logError(err)
					continue
				}
				fmt.Printf("[%s] ", msg.Header.GetMessageTimestamp().AsTime().Format(time.RFC3339Nano))
				logRawJSON(raw)
			}
		},
	},
	{
		Use:   "pub <topic_name> <type_url> <JSON_string>",
		Short: "Publish a JSON message on a topic",
		Long:  `Publishes the JSON data under the given type URL at --frequency hertz, --repetitions times (0 runs nonstop).`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsage(cmd.Use)
				return
			}

			if Frequency <= 0 {
				logUsage(cmd.Use)
				return
			}

			pub, err := robotica.NewUntypedPublisher(node, args[0], args[1])
			if err != nil {
				logError(err)
				return
			}
			defer pub.Close()

			period := time.Duration(float64(time.Second) / Frequency)
			ticker := time.NewTicker(period)
			defer ticker.Stop()

			for sent := uint(0); ; {
				if err := pub.Send(cmd.Context(), []byte(args[2])); err != nil {
					logError(err)
					return
				}
				sent++
				if Repetitions != 0 && sent >= Repetitions {
					break
				}
				select {
				case <-cmd.Context().Done():
					return
				case <-ticker.C:
				}
			}

			logOK()
		},
	},
	{
		Use:   "list",
		Short: "List all topics currently active on the fabric",
		Run: func(cmd *cobra.Command, args []string) {
			nodes, err := node.ListNodes(cmd.Context())
			if err != nil {
				logError(err)
				return
			}

			seen := make(map[string]struct{})
			for _, name := range nodes {
				subs, err := node.ListNodeSubscribers(cmd.Context(), name)
				if err != nil {
					logError(err)
					return
				}
				for _, info := range subs {
					seen[info.GetName()] = struct{}{}
				}
				pubs, err := node.ListNodePublishers(cmd.Context(), name)
				if err != nil {
					logError(err)
					return
				}
				for _, info := range pubs {
					seen[info.GetName()] = struct{}{}
				}
			}

			topics := make([]string, 0, len(seen))
			for topic := range seen {
				topics = append(topics, topic)
			}
			sort.Strings(topics)
			for _, topic := range topics {
				fmt.Println(topic)
			}
		},
	},
}

// NewTopicsCmd returns the topic command tree.
func NewTopicsCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "topic [sub|pub|list]",
		Short: "Subscribe to, publish on, and list topics",
	}

	for i := range cmdTopics {
		cmd.AddCommand(&cmdTopics[i])
	}

	cmd.PersistentFlags().Float64VarP(&Frequency, "frequency", "f", Frequency, "publish frequency in hertz")
	cmd.PersistentFlags().UintVarP(&Repetitions, "repetitions", "r", 0, "how many messages to send; 0 runs nonstop")

	return &cmd
}

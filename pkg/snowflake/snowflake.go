package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 请求ID
func GenID() int64 {
	return node.Generate().Int64()
}

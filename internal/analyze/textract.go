package analyze

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// Analyzer turns raw image bytes into document blocks.
type Analyzer interface {
	AnalyzeDocument(ctx context.Context, image []byte) ([]Block, error)
}

// Textract implements Analyzer against AWS Textract table analysis.
type Textract struct {
	client *textract.Client
}

// Verify *Textract satisfies Analyzer at compile time.
var _ Analyzer = (*Textract)(nil)

// NewTextract builds an analyzer from ambient AWS configuration.
func NewTextract(cfg aws.Config) *Textract {
	return &Textract{client: textract.NewFromConfig(cfg)}
}

// AnalyzeDocument runs table analysis on one image and returns the full
// block list.
func (t *Textract) AnalyzeDocument(ctx context.Context, image []byte) ([]Block, error) {
	out, err := t.client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document:     &types.Document{Bytes: image},
		FeatureTypes: []types.FeatureType{types.FeatureTypeTables},
	})
	if err != nil {
		return nil, fmt.Errorf("analyze: textract: %w", err)
	}
	return convertBlocks(out.Blocks), nil
}

func convertBlocks(in []types.Block) []Block {
	blocks := make([]Block, 0, len(in))
	for _, b := range in {
		blk := Block{
			ID:          aws.ToString(b.Id),
			Kind:        kindOf(b.BlockType),
			RowIndex:    int(aws.ToInt32(b.RowIndex)),
			ColumnIndex: int(aws.ToInt32(b.ColumnIndex)),
			Text:        aws.ToString(b.Text),
		}
		for _, rel := range b.Relationships {
			blk.Relationships = append(blk.Relationships, Relationship{
				Type: string(rel.Type),
				IDs:  rel.Ids,
			})
		}
		blocks = append(blocks, blk)
	}
	return blocks
}

func kindOf(t types.BlockType) BlockKind {
	switch t {
	case types.BlockTypeCell:
		return KindCell
	case types.BlockTypeWord:
		return KindWord
	default:
		return KindOther
	}
}

// internal/infra/firestore/client.go
package firestoreinfra

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// ClientWrapper は Firestore クライアントと接続先情報をラップします。
type ClientWrapper struct {
	Client     *firestore.Client
	ProjectID  string
	DatabaseID string
}

// ResolveDatabase parses DATABASE_URL leniently.
//
// Accepted forms:
//   - "firestore://<project>"              -> (<project>, "(default)")
//   - "firestore://<project>/<database>"   -> (<project>, <database>)
//   - "<project>"                          -> (<project>, "(default)")
//
// The value is a locator, not a credential; anything unparseable is treated
// as a bare project ID.
func ResolveDatabase(raw string) (projectID, databaseID string) {
	databaseID = firestore.DefaultDatabaseID

	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "firestore://")
	s = strings.Trim(s, "/")
	if s == "" {
		return "", databaseID
	}

	if i := strings.Index(s, "/"); i >= 0 {
		projectID = s[:i]
		if db := strings.Trim(s[i+1:], "/"); db != "" {
			databaseID = db
		}
		return projectID, databaseID
	}
	return s, databaseID
}

// NewClient は Firestore クライアントを初期化します。
// credentialsFile が空文字の場合、ADC(Application Default Credentials)を使用します。
func NewClient(ctx context.Context, databaseURL string, credentialsFile string) (*ClientWrapper, error) {
	projectID, databaseID := ResolveDatabase(databaseURL)
	if projectID == "" {
		return nil, fmt.Errorf("firestore: DATABASE_URL does not resolve to a project id")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	log.Printf("[store] ✅ Firestore connected (project: %s, database: %s)", projectID, databaseID)
	return &ClientWrapper{Client: client, ProjectID: projectID, DatabaseID: databaseID}, nil
}

// Ping は Firestore 接続をテストします。
// 通常 Firestore は Ping API を持たないため、コレクション一覧の取得を試みます。
func (cw *ClientWrapper) Ping(ctx context.Context) error {
	if cw == nil || cw.Client == nil {
		return fmt.Errorf("firestore client is nil")
	}
	_, err := cw.Client.Collections(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("firestore ping failed: %w", err)
	}
	return nil
}

// Name は /test レスポンス用の接続先表示名を返します。
func (cw *ClientWrapper) Name() string {
	if cw == nil {
		return ""
	}
	if cw.DatabaseID != "" && cw.DatabaseID != firestore.DefaultDatabaseID {
		return cw.ProjectID + "/" + cw.DatabaseID
	}
	return cw.ProjectID
}

// Close は Firestore クライアントをクローズします。
func (cw *ClientWrapper) Close() error {
	if cw == nil || cw.Client == nil {
		return nil
	}
	return cw.Client.Close()
}

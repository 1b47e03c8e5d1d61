package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Engine struct {
	client s3iface.S3API
}

var _ Engine = (*S3Engine)(nil)

func NewS3() *S3Engine {
	return &S3Engine{client: newClient(nil)}
}

func NewS3WithClient(client s3iface.S3API) *S3Engine {
	return &S3Engine{client: client}
}

func newClient(cfg *aws.Config) *s3.S3 {
	if cfg == nil {
		cfg = &aws.Config{}
	}
	// SDK requires a region, but this can also be set via the
	// AWS_REGION environment variable.
	if cfg.Region == nil {
		cfg.Region = aws.String("us-east-1")
	}
	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		SharedConfigState: session.SharedConfigEnable,
	}))
	return s3.New(sess)
}

func (s *S3Engine) Get(ctx context.Context, u *URI) (Reader, error) {
	r, err := newS3Reader(ctx, u, s.client)
	return r, wrapS3Err(u, err)
}

func (s *S3Engine) Put(_ context.Context, u *URI) (io.WriteCloser, error) {
	bucket, key, err := s3Path(u)
	if err != nil {
		return nil, err
	}
	return &s3Writer{
		bucket:   bucket,
		key:      key,
		uploader: s3manager.NewUploaderWithClient(s.client),
		done:     make(chan struct{}),
	}, nil
}

func (s *S3Engine) Exists(ctx context.Context, u *URI) (bool, error) {
	_, err := s.head(ctx, u)
	if err != nil {
		var reqerr awserr.RequestFailure
		if errors.As(err, &reqerr) && reqerr.StatusCode() == http.StatusNotFound {
			return false, nil
		}
		return false, wrapS3Err(u, err)
	}
	return true, nil
}

func (s *S3Engine) Size(ctx context.Context, u *URI) (int64, error) {
	out, err := s.head(ctx, u)
	if err != nil {
		return 0, wrapS3Err(u, err)
	}
	return aws.Int64Value(out.ContentLength), nil
}

func (s *S3Engine) head(ctx context.Context, u *URI) (*s3.HeadObjectOutput, error) {
	bucket, key, err := s3Path(u)
	if err != nil {
		return nil, err
	}
	return s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
}

func s3Path(u *URI) (bucket, key string, err error) {
	if !u.HasScheme(S3Scheme) {
		return "", "", fmt.Errorf("%s: not an s3 URI", u)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

func wrapS3Err(u *URI, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", u, err)
}

// s3Reader reads an object with ranged GETs so that ReadAt works
// without downloading the whole object, as footer-based formats need.
type s3Reader struct {
	ctx    context.Context
	client s3iface.S3API
	bucket string
	key    string
	size   int64
	offset int64
}

var _ Reader = (*s3Reader)(nil)
var _ Sizer = (*s3Reader)(nil)

func newS3Reader(ctx context.Context, u *URI, client s3iface.S3API) (*s3Reader, error) {
	bucket, key, err := s3Path(u)
	if err != nil {
		return nil, err
	}
	out, err := client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return &s3Reader{
		ctx:    ctx,
		client: client,
		bucket: bucket,
		key:    key,
		size:   aws.Int64Value(out.ContentLength),
	}, nil
}

func (r *s3Reader) Read(p []byte) (int, error) {
	if r.offset >= r.size {
		return 0, io.EOF
	}
	n, err := r.ReadAt(p, r.offset)
	r.offset += int64(n)
	return n, err
}

func (r *s3Reader) ReadAt(p []byte, off int64) (int, error) {
	if off >= r.size {
		return 0, io.EOF
	}
	end := off + int64(len(p)) - 1
	if end >= r.size {
		end = r.size - 1
	}
	out, err := r.client.GetObjectWithContext(r.ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, end)),
	})
	if err != nil {
		return 0, err
	}
	defer out.Body.Close()
	n, err := io.ReadFull(out.Body, p[:end-off+1])
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	if err == nil && off+int64(n) == r.size {
		return n, io.EOF
	}
	return n, err
}

func (r *s3Reader) Size() (int64, error) { return r.size, nil }

func (r *s3Reader) Close() error { return nil }

// s3Writer streams an upload through a pipe so Write never buffers the
// whole object.
type s3Writer struct {
	bucket   string
	key      string
	uploader *s3manager.Uploader
	writer   *io.PipeWriter
	once     sync.Once
	done     chan struct{}
	err      error
}

func (w *s3Writer) init() {
	pr, pw := io.Pipe()
	w.writer = pw
	go func() {
		_, err := w.uploader.Upload(&s3manager.UploadInput{
			Bucket: aws.String(w.bucket),
			Key:    aws.String(w.key),
			Body:   pr,
		})
		w.err = err
		close(w.done)
		pr.CloseWithError(err)
	}()
}

func (w *s3Writer) Write(b []byte) (int, error) {
	w.once.Do(w.init)
	return w.writer.Write(b)
}

func (w *s3Writer) Close() error {
	w.once.Do(w.init)
	err := w.writer.Close()
	<-w.done
	if err != nil {
		return err
	}
	return w.err
}

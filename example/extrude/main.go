package main

import (
	"flag"
	"os"

	"github.com/akmonengine/jan"
	"github.com/akmonengine/jan/tessellate"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	distance = flag.Float64("distance", 0.5, "extrusion distance")
	workers  = flag.Int("workers", 4, "goroutines used to compute normals")
	logFile  = flag.String("log-file", "", "also write JSON logs to this file, rotated")
	debug    = flag.Bool("debug", false, "log at debug level")
)

func newLogger() *zap.Logger {
	level := zap.InfoLevel
	if *debug {
		level = zap.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(os.Stderr), level),
	}
	if *logFile != "" {
		rotated := zapcore.AddSync(&lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), rotated, level))
	}
	return zap.New(zapcore.NewTee(cores...))
}

func main() {
	flag.Parse()
	logger := newLogger()
	defer logger.Sync()

	mesh := jan.NewMesh(jan.WithLogger(logger), jan.WithWorkers(*workers))
	added := 0
	mesh.Events.Subscribe(jan.FACE_ADDED, func(event jan.Event) { added++ })
	mesh.Events.Subscribe(jan.NORMALS_UPDATED, func(event jan.Event) {
		e := event.(jan.NormalsUpdatedEvent)
		logger.Debug("normals updated", zap.Int("faces", e.Faces), zap.Int("vertices", e.Vertices))
	})

	face, err := mesh.MakeAWeirdFace()
	if err != nil {
		logger.Fatal("build face", zap.Error(err))
	}
	selection := jan.NewSelection()
	selection.ToggleFace(face)
	if err := mesh.Extrude(selection, *distance); err != nil {
		logger.Fatal("extrude", zap.Error(err))
	}
	if err := mesh.MoveFaces(jan.SelectAll(mesh), mgl64.Vec3{0, 0, 1}); err != nil {
		logger.Fatal("move", zap.Error(err))
	}
	mesh.ColourAllFaces(mgl64.Vec3{0.8, 0.8, 0.8})
	mesh.Flush()

	if box, ok := mesh.Bounds(); ok {
		logger.Debug("bounds", zap.Float64s("min", box.Min[:]), zap.Float64s("max", box.Max[:]))
	}

	logger.Info("extruded",
		zap.Int("faces added", added),
		zap.Int("vertices", mesh.VerticesCount()),
		zap.Int("edges", mesh.EdgesCount()),
		zap.Int("faces", mesh.FacesCount()),
		zap.Bool("valid", mesh.Validate(nil)))

	triangulation, err := tessellate.Triangulate(mesh)
	if err != nil {
		logger.Fatal("triangulate", zap.Error(err))
	}
	wireframe, err := tessellate.MakeWireframe(mesh, tessellate.WireframeSpec{
		Colour:       mgl64.Vec4{0, 0, 0, 1},
		SelectColour: mgl64.Vec4{1, 0.5, 0, 1},
		HoverColour:  mgl64.Vec4{1, 1, 0, 1},
		Selection:    jan.NewSelection(),
	})
	if err != nil {
		logger.Fatal("wireframe", zap.Error(err))
	}
	logger.Info("tessellated",
		zap.Int("triangles", len(triangulation.Indices)/3),
		zap.Int("ribbons", len(wireframe.Indices)/6))

	holes := jan.NewMesh(jan.WithLogger(logger))
	if _, err := holes.MakeAFaceWithHoles(); err != nil {
		logger.Fatal("build face with holes", zap.Error(err))
	}
	if err := holes.FlipFaceNormals(jan.SelectAll(holes)); err != nil {
		logger.Fatal("flip", zap.Error(err))
	}
	copied, err := jan.CopyMesh(holes)
	if err != nil {
		logger.Fatal("copy", zap.Error(err))
	}
	triangulation, err = tessellate.Triangulate(copied)
	if err != nil {
		logger.Fatal("triangulate copy", zap.Error(err))
	}
	pointcloud, err := tessellate.MakePointcloud(copied, tessellate.PointcloudSpec{Colour: mgl64.Vec4{1, 1, 1, 1}})
	if err != nil {
		logger.Fatal("pointcloud", zap.Error(err))
	}
	logger.Info("face with holes",
		zap.Int("borders", copied.BordersCount()),
		zap.Int("triangles", len(triangulation.Indices)/3),
		zap.Int("points", len(pointcloud.Indices)/6),
		zap.Bool("valid", copied.Validate(nil)))
}
